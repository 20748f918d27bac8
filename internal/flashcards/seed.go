package flashcards

// SeedCards is the starter deck for fresh installs.
func SeedCards() []Card {
	return []Card{
		{
			ID:     "1",
			Topic:  "DSA",
			Front:  "What is Time Complexity?",
			Back:   "The computational complexity that describes the amount of time it takes to run an algorithm.",
			Status: StatusNeedRevision,
		},
		{
			ID:     "2",
			Topic:  "Graph Theory",
			Front:  "Space Complexity of BFS?",
			Back:   "O(V) where V is the number of vertices.",
			Status: StatusNeedRevision,
		},
		{
			ID:     "3",
			Topic:  "Networking",
			Front:  "Explain OSI Layer 3",
			Back:   "Network Layer: Responsible for packet forwarding including routing through intermediate routers.",
			Status: StatusNeedRevision,
		},
	}
}
