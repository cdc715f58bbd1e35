package domain

// XCConfig is the handle of the build settings file generated for one build configuration.
// Rendering its contents is the job of the xcconfig writer; the aggregate target only keys
// these handles by configuration name.
type XCConfig struct {
	// Configuration is the build configuration the file applies to.
	Configuration string
	// Path is the absolute location of the file inside the sandbox.
	Path string
	// Settings are the build settings to render, keyed by setting name.
	Settings map[string]string
}
