package invoicer

// SampleClients returns the demo client set used to seed a fresh workspace.
func SampleClients() []NewClientFields {
	return []NewClientFields{
		{
			Name:       "Acme Corporation",
			Email:      "billing@acme-corp.com",
			Address:    "123 Business Ave\nNew York, NY 10001",
			Phone:      "+1 (555) 123-4567",
			Company:    "Acme Corporation",
			ClientCode: "ACM",
			Notes:      "Long-term client, payment terms NET 30",
		},
		{
			Name:       "TechStart Solutions",
			Email:      "finance@techstart.io",
			Address:    "456 Innovation Drive\nSan Francisco, CA 94107",
			Phone:      "+1 (555) 987-6543",
			Company:    "TechStart Solutions Inc",
			ClientCode: "TSS",
			Notes:      "Startup client, prefers electronic invoices",
		},
		{
			Name:       "Global Dynamics Inc",
			Email:      "accounts@globaldynamics.com",
			Address:    "789 Corporate Blvd\nChicago, IL 60601",
			Phone:      "+1 (555) 246-8135",
			Company:    "Global Dynamics Inc",
			ClientCode: "GDI",
			Notes:      "Enterprise client, requires detailed project descriptions",
		},
	}
}
