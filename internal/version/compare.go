package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-graph/pkg/errors"
)

// CheckAPICompatibility checks if the client API version can talk to a server
// advertising serverVersion. Returns nil if compatible, error with details if not.
//
// Compatibility Rules:
//   - An empty server version (header not sent) or "main" skips the check
//   - Major versions must match exactly
//   - The server minor version must be at least the client minor version
//   - Patch versions can differ
//
// Examples:
//   - Client 1.0.0, Server 1.0.0 -> OK (exact match)
//   - Client 1.0.0, Server 1.3.2 -> OK (server is newer within the major)
//   - Client 1.2.0, Server 1.1.0 -> ERROR (server too old)
//   - Client 1.0.0, Server 2.0.0 -> ERROR (major differs)
func CheckAPICompatibility(clientVersion, serverVersion string) error {
	clientVersion = strings.TrimPrefix(clientVersion, "v")
	serverVersion = strings.TrimPrefix(serverVersion, "v")

	if serverVersion == "" || serverVersion == "main" || clientVersion == "main" {
		return nil
	}

	clientSemver, err := semver.NewVersion(clientVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid client API version '%s'", clientVersion)
	}

	serverSemver, err := semver.NewVersion(serverVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid server API version '%s'", serverVersion)
	}

	if clientSemver.Major() != serverSemver.Major() {
		return errors.Newf(errors.ErrCodeVersionMismatch, "major version mismatch: client speaks %d.x.x but server is %d.x.x",
			clientSemver.Major(), serverSemver.Major())
	}

	if serverSemver.Minor() < clientSemver.Minor() {
		return errors.Newf(errors.ErrCodeVersionMismatch, "server too old: client needs %d.%d.x but server is %d.%d.x",
			clientSemver.Major(), clientSemver.Minor(),
			serverSemver.Major(), serverSemver.Minor())
	}

	return nil
}
