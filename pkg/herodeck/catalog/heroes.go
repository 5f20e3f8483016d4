package catalog

// LogoURL is the banner shown above the carousel.
const LogoURL = "https://iili.io/JMnuvbp.png"

// Default returns the built-in hero list.
func Default() Catalog {
	return New([]Hero{
		{
			Name:     "Iron Man",
			Message:  "I AM IRON MAN",
			ImageURL: "https://iili.io/JMnuDI2.png",
		},
		{
			Name:     "Deadpool",
			Message:  "Hi, it's me - Deadpool!",
			ImageURL: "https://iili.io/JMnAfIV.png",
		},
		{
			Name:     "Spider Man",
			Message:  "In iron suit",
			ImageURL: "https://iili.io/JMnuyB9.png",
		},
	})
}
