package render

import (
	"fmt"

	"github.com/voidpointergroup/complate/internal/backend"
)

// Privilege is the capability level of the invocation.
type Privilege string

const (
	PrivilegeNormal       Privilege = "normal"
	PrivilegeExperimental Privilege = "experimental"
)

// checkPrivilege validates the requested combination of backend, trust
// mode, and overrides before any resolution work. Failures are fatal.
func checkPrivilege(privilege Privilege, kind backend.Kind, overrides map[string]string, trust TrustMode) error {
	// Headless can never answer a confirmation prompt, so trust=prompt
	// would hang or abort mid-render. Reject it up front for any
	// privilege level.
	if trust == TrustPrompt && kind == backend.KindHeadless {
		return fmt.Errorf("trust mode %q needs an interactive backend, got %q: %w", trust, kind, ErrPrivilegeDenied)
	}

	if privilege == PrivilegeExperimental {
		return nil
	}

	if kind == backend.KindUI {
		return fmt.Errorf("backend %q requires experimental privileges: %w", kind, ErrPrivilegeDenied)
	}
	if len(overrides) > 0 {
		return fmt.Errorf("value overrides require experimental privileges: %w", ErrPrivilegeDenied)
	}
	return nil
}
