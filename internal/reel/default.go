package reel

// Default returns the built-in seven scene reel. Each call returns a
// fresh copy.
func Default() *Reel {
	return &Reel{
		Title:         "Emotional story reel",
		TotalDuration: 17,
		AudioURL:      "https://cdn.pixabay.com/download/audio/2022/10/09/audio_98d148d98ef5.mp3?filename=lullaby-121695.mp3",
		CTA:           "Share your miracle story",
		Scenes: []Scene{
			{
				ID:         1,
				Start:      0,
				End:        2,
				Kicker:     "SCENE 1 · HOOK",
				Text:       "Every journey is different…",
				Background: Image("https://images.unsplash.com/photo-1584515933487-779824d29309?q=80&w=1600&auto=format&fit=crop"),
			},
			{
				ID:         2,
				Start:      2,
				End:        4,
				Kicker:     "SCENE 2 · SETUP",
				Text:       "But some journeys test every bit of your strength.",
				Background: Image("https://images.unsplash.com/photo-1600359755266-0122b3c33836?q=80&w=1600&auto=format&fit=crop"),
			},
			{
				ID:         3,
				Start:      4,
				End:        7,
				Kicker:     "SCENE 3 · EMOTION",
				Text:       "Sleepless nights. Fear. Prayers.",
				Background: Image("https://images.unsplash.com/photo-1519681393784-d120267933ba?q=80&w=1600&auto=format&fit=crop"),
			},
			{
				ID:         4,
				Start:      7,
				End:        9,
				Kicker:     "SCENE 4 · RISING",
				Text:       "Yet… they never gave up.",
				Background: Gradient(),
			},
			{
				ID:         5,
				Start:      9,
				End:        12,
				Kicker:     "SCENE 5 · CLIMAX",
				Text:       "Because this little life is their whole world.",
				Background: Image("https://images.unsplash.com/photo-1576765974027-c9ae0b9e09b0?q=80&w=1600&auto=format&fit=crop"),
			},
			{
				ID:         6,
				Start:      12,
				End:        15,
				Kicker:     "SCENE 6 · RESOLUTION",
				Text:       "Strong parents raise strong miracles.",
				Background: Image("https://images.unsplash.com/photo-1543176473-7649b4d1b05a?q=80&w=1600&auto=format&fit=crop"),
			},
			{
				ID:         7,
				Start:      15,
				End:        17,
				Kicker:     "CTA · OPTIONAL",
				Text:       "Share your miracle story. 💛",
				Background: Gradient(),
			},
		},
	}
}
