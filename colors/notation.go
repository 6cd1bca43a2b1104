package colors

// Textual notation used to present a color.
// ENUM(hex, rgb, rgba, hsl, hsla)
type Notation int
