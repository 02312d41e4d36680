package domain

// SampleTasks returns the fixed tasks loaded into an empty store at startup.
func SampleTasks() []TaskInput {
	return []TaskInput{
		{Text: "Write a diary entry from the future", Priority: PriorityMedium, Category: category("writing")},
		{Text: "Create a time machine from a cardboard box", Priority: PriorityHigh, Category: category("crafts")},
		{Text: "Plan a trip to the dinosaurs", Priority: PriorityHigh, Category: category("planning")},
		{Text: "Draw a futuristic city", Priority: PriorityMedium, Category: category("art")},
		{Text: "List items to bring on a time-travel adventure", Priority: PriorityLow, Category: category("planning")},
	}
}

func category(s string) *string {
	return &s
}
