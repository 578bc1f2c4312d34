package gnplants

var (
	// Version of GNplants.
	Version = "v0.1.0"

	// Build timestamp, set by the build process.
	Build = "n/a"
)
