package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Component Tree Errors (E100-E119)
	// ============================================

	"E101": {
		Category: CategoryRuntime,
		Message:  "widget not yet initialized - it must first be added to the DOM",
		Detail:   "The operation needs the widget's live element. Add the widget to a container attached to a mounted Root and wait for the first patch.",
		DocURL:   "https://kview.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryRuntime,
		Message:  "Component is not a child of this container",
		Detail:   "The component passed to RemoveChecked is not in the container's child list.",
		DocURL:   "https://kview.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategoryLayout,
		Message:  "Split panel requires exactly two children",
		Detail:   "A split panel with any other number of children renders nothing.",
		DocURL:   "https://kview.dev/docs/errors/E103",
	},
	"E104": {
		Category: CategoryRuntime,
		Message:  "Root disposed",
		Detail:   "The root has been disposed and no longer patches the document.",
		DocURL:   "https://kview.dev/docs/errors/E104",
	},

	// ============================================
	// Configuration Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The configuration file could not be parsed.",
		DocURL:   "https://kview.dev/docs/errors/E120",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is missing or out of range.",
		DocURL:   "https://kview.dev/docs/errors/E121",
	},

	// ============================================
	// CLI Errors (E140-E159)
	// ============================================

	"E141": {
		Category: CategoryCLI,
		Message:  "Configuration file not found",
		Detail:   "No kview.json or kview.yaml was found in the given directory.",
		DocURL:   "https://kview.dev/docs/errors/E141",
	},

	// ============================================
	// Protocol Errors (E160-E179)
	// ============================================

	"E160": {
		Category: CategoryProtocol,
		Message:  "Invalid frame",
		Detail:   "A frame received from the browser could not be decoded.",
		DocURL:   "https://kview.dev/docs/errors/E160",
	},
	"E161": {
		Category: CategoryProtocol,
		Message:  "Unknown event target",
		Detail:   "The event refers to a node that is no longer in the document.",
		DocURL:   "https://kview.dev/docs/errors/E161",
	},

	// ============================================
	// Export Errors (E180-E199)
	// ============================================

	"E180": {
		Category: CategoryExport,
		Message:  "Export failed",
		Detail:   "The rendered page could not be written to its destination.",
		DocURL:   "https://kview.dev/docs/errors/E180",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
