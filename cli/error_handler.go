package cli

import (
	"fmt"
	"os"

	"github.com/grovetools/statusline/errors"
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
		if statusErr, ok := err.(*errors.StatusError); ok {
			fmt.Fprintf(os.Stderr, "❌ Configuration not found at %s\n", statusErr.Details["path"])
		} else {
			fmt.Fprintf(os.Stderr, "❌ Configuration not found.\n")
		}
		return err

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fmt.Fprintf(os.Stderr, "❌ Invalid configuration: %v\n", err)
		fmt.Fprintf(os.Stderr, "Check your statusline.yml against the documented options.\n")
		return err

	case errors.ErrCodeNvimConnect:
		fmt.Fprintf(os.Stderr, "❌ Could not connect to Neovim. Is $NVIM set?\n")
		if h.Verbose {
			fmt.Fprintf(os.Stderr, "   %v\n", err)
		}
		return err

	case errors.ErrCodeStarshipSetup:
		fmt.Fprintf(os.Stderr, "❌ Starship integration failed: %v\n", err)
		return err

	default:
		if h.Verbose {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "❌ %s\n", errors.GetMessage(err))
		}
		return err
	}
}
