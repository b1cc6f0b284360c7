package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thDefaultTheme(),
		thParchmentTheme(),
		thGruvboxTheme(),
		thNordTheme(),
		thDraculaTheme(),
	} {
		Register(t)
	}
}

// thDefaultTheme returns the dark neutral theme with a gold accent.
func thDefaultTheme() Theme {
	return Theme{
		Name:       "default",
		Background: "#1e1e1e",
		Foreground: "#d4d4d4",
		Dim:        "#6b6b6b",
		Accent:     "#d4a72c",

		RulerLine: "#5a5a5a",
		TickMajor: "#d4d4d4",
		TickMinor: "#6b6b6b",
		TickLabel: "#a8a8a8",

		LaneGuide:     "#2c2c2c",
		EventMarker:   "#e06c75",
		EventSelected: "#f9e2af",
		HoverMarker:   "#e5484d",

		Border:    "#3e3e3e",
		Indicator: "#d4d4d4",
		Modal:     "#d4a72c",

		Notice:   "#e5c07b",
		HelpKey:  "#d4a72c",
		HelpDesc: "#6b6b6b",
	}
}

// thParchmentTheme returns a light theme close to printed art-history plates.
func thParchmentTheme() Theme {
	return Theme{
		Name:       "parchment",
		Background: "#f7f1e3",
		Foreground: "#3b3024",
		Dim:        "#a39a8c",
		Accent:     "#8b4513",

		RulerLine: "#c8bfae",
		TickMajor: "#3b3024",
		TickMinor: "#b3a996",
		TickLabel: "#6f6455",

		LaneGuide:     "#ebe3d1",
		EventMarker:   "#b22222",
		EventSelected: "#8b4513",
		HoverMarker:   "#dc2626",

		Border:    "#d6cdb9",
		Indicator: "#3b3024",
		Modal:     "#8b4513",

		Notice:   "#b8860b",
		HelpKey:  "#8b4513",
		HelpDesc: "#a39a8c",
	}
}

// thGruvboxTheme returns the warm retro Gruvbox theme.
func thGruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Background: "#282828",
		Foreground: "#ebdbb2",
		Dim:        "#928374",
		Accent:     "#fe8019",

		RulerLine: "#665c54",
		TickMajor: "#ebdbb2",
		TickMinor: "#7c6f64",
		TickLabel: "#bdae93",

		LaneGuide:     "#3c3836",
		EventMarker:   "#fb4934",
		EventSelected: "#fabd2f",
		HoverMarker:   "#fb4934",

		Border:    "#504945",
		Indicator: "#ebdbb2",
		Modal:     "#fe8019",

		Notice:   "#fabd2f",
		HelpKey:  "#fe8019",
		HelpDesc: "#928374",
	}
}

// thNordTheme returns the cool arctic Nord theme.
func thNordTheme() Theme {
	return Theme{
		Name:       "nord",
		Background: "#2e3440",
		Foreground: "#eceff4",
		Dim:        "#4c566a",
		Accent:     "#88c0d0",

		RulerLine: "#4c566a",
		TickMajor: "#eceff4",
		TickMinor: "#616e88",
		TickLabel: "#d8dee9",

		LaneGuide:     "#3b4252",
		EventMarker:   "#bf616a",
		EventSelected: "#ebcb8b",
		HoverMarker:   "#bf616a",

		Border:    "#434c5e",
		Indicator: "#e5e9f0",
		Modal:     "#88c0d0",

		Notice:   "#ebcb8b",
		HelpKey:  "#88c0d0",
		HelpDesc: "#4c566a",
	}
}

// thDraculaTheme returns the purple-accented Dracula theme.
func thDraculaTheme() Theme {
	return Theme{
		Name:       "dracula",
		Background: "#282a36",
		Foreground: "#f8f8f2",
		Dim:        "#6272a4",
		Accent:     "#bd93f9",

		RulerLine: "#44475a",
		TickMajor: "#f8f8f2",
		TickMinor: "#6272a4",
		TickLabel: "#bfbfbf",

		LaneGuide:     "#343746",
		EventMarker:   "#ff5555",
		EventSelected: "#f1fa8c",
		HoverMarker:   "#ff79c6",

		Border:    "#44475a",
		Indicator: "#f8f8f2",
		Modal:     "#bd93f9",

		Notice:   "#f1fa8c",
		HelpKey:  "#bd93f9",
		HelpDesc: "#6272a4",
	}
}
