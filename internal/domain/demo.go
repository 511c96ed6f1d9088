package domain

import "time"

// Fixed demo dataset shown whenever no live database is reachable. Timestamps
// are stamped at call time so the rows always look current on the dashboard.

func DemoActivities() []Activity {
	now := time.Now().UTC()
	return []Activity{
		{ID: 1, UserID: "sarah_designer", FeatureUsed: "export_report", Email: "sarah@example.com", Timestamp: now},
		{ID: 2, UserID: "john_agency", FeatureUsed: "file_share", Email: "john@example.com", Timestamp: now},
	}
}

func DemoOpportunities() []Opportunity {
	now := time.Now().UTC()
	return []Opportunity{
		{
			ID:                 1,
			UserID:             "sarah_designer",
			Email:              "sarah@example.com",
			RecommendedFeature: "Pro Exports",
			AIScore:            92,
			Reasoning:          "Frequent exports",
			CreatedAt:          now,
			Status:             "active",
		},
		{
			ID:                 2,
			UserID:             "john_agency",
			Email:              "john@example.com",
			RecommendedFeature: "Team Plan",
			AIScore:            65,
			Reasoning:          "Multiple teammates",
			CreatedAt:          now.Add(-2 * time.Hour),
			Status:             "active",
		},
	}
}

func DemoCampaigns() []Campaign {
	now := time.Now().UTC()
	return []Campaign{
		{
			ID:                 1,
			OpportunityID:      1,
			UserID:             "sarah_designer",
			RecommendedFeature: "Pro Exports",
			SubjectLine:        "Try Pro Exports",
			EmailMessage:       "Upgrade to pro to export...",
			EmailTo:            "sarah@example.com",
			CampaignType:       "email",
			AIScore:            92,
			SentAt:             now,
			DeliveryStatus:     "sent",
			OpenCount:          1,
			ClickCount:         1,
			CreatedAt:          now,
		},
	}
}
