package ports

import "context"

// Prompter asks the user a question until one of choices is answered.
// Answers are matched case-insensitively and returned normalized (lowercase).
type Prompter interface {
	Choose(ctx context.Context, question string, choices []string) (string, error)
}
