package ports

// Clipboard places text on the system clipboard.
// This is a driven port (implemented by the share adapter).
type Clipboard interface {
	// Write copies the text to the clipboard.
	Write(text string) error
}

// Printer sends a rendered document to the host's print facility.
// This is a driven port (implemented by the share adapter).
type Printer interface {
	// Print submits the file at path to the default printer.
	Print(path string) error
}
