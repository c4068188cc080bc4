package cli

import (
	"fmt"
	"os"

	"github.com/juicer149/dev-bootstrap/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ Configuration not found. The built-in defaults apply when no bootstrap.yml exists.\n")
		return err

	case errors.ErrCodeDuplicateDestination:
		if bootErr, ok := err.(*errors.BootstrapError); ok {
			fmt.Fprintf(os.Stderr, "❌ Destination '%s' is claimed by more than one repository group\n",
				bootErr.Details["destination"])
			fmt.Fprintf(os.Stderr, "Each destination may appear in exactly one group; fix the configuration.\n")
		}
		return err

	case errors.ErrCodePrereqInstallFailed:
		fmt.Fprintf(os.Stderr, "❌ Failed to install prerequisites. Install git and bash manually, then re-run.\n")
		return err

	case errors.ErrCodeGitCloneFailed:
		if bootErr, ok := err.(*errors.BootstrapError); ok {
			fmt.Fprintf(os.Stderr, "❌ Failed to clone %s\n", bootErr.Details["url"])
			fmt.Fprintf(os.Stderr, "Check the remote URL and your SSH credentials, then re-run.\n")
		}
		return err

	case errors.ErrCodeRunFailed:
		if bootErr, ok := err.(*errors.BootstrapError); ok {
			fmt.Fprintf(os.Stderr, "❌ Run completed with %v failure(s); see the summary above.\n",
				bootErr.Details["failures"])
			fmt.Fprintf(os.Stderr, "Re-running the same action retries only the failed steps.\n")
		}
		return err

	default:
		// Generic error handling
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		// If verbose mode, show full error details
		if h.Verbose {
			if bootErr, ok := err.(*errors.BootstrapError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", bootErr.ToJSON())
			}
		}
		if _, ok := err.(*errors.BootstrapError); ok {
			return err
		}
		// Mark as reported so the caller does not print it again
		return errors.Wrap(err, errors.ErrCodeInternal, err.Error())
	}
}
