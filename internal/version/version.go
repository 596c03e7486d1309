package version

// Version is the current version of argo-graph.
// This value is set at build time using ldflags:
// -ldflags "-X github.com/rxtech-lab/argo-graph/internal/version.Version=1.2.3"
// The value "main" indicates a development build.
var Version = "v0.3.0"

// APIVersion is the version of the points API this client speaks.
// The local point server advertises it in the X-Api-Version header.
const APIVersion = "1.0.0"

// APIVersionHeader is the response header carrying the server's API version.
const APIVersionHeader = "X-Api-Version"

// GetVersion returns the current version of the binary.
func GetVersion() string {
	return Version
}
