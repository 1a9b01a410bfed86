package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate validates the Config using struct tags and cross-field rules.
// Credentials are intentionally not required here: a bridge with no
// credentials boots fine and reports authentication failure per tool call.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.Struct(c); err != nil {
		return formatValidationErrors(err)
	}

	// Cross-field: a password without a username (or vice versa) is almost
	// certainly a deployment mistake worth failing fast on.
	if (c.API.Username == "") != (c.API.Password == "") {
		return fmt.Errorf("api: username and password must be set together (set both WAZUH_API_USERNAME and WAZUH_API_PASSWORD)")
	}

	return nil
}

// formatValidationErrors converts validator errors into actionable messages.
func formatValidationErrors(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		field := strings.ToLower(strings.TrimPrefix(fe.Namespace(), "Config."))
		switch fe.Tag() {
		case "numeric":
			msgs = append(msgs, fmt.Sprintf("%s: must be numeric (got %q)", field, fe.Value()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s: must be one of [%s] (got %q)", field, fe.Param(), fe.Value()))
		case "hostname_port":
			msgs = append(msgs, fmt.Sprintf("%s: must be a host:port address (got %q)", field, fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %q validation", field, fe.Tag()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}
