package apps

import (
	"errors"

	"github.com/Neumenon/raz/raz"
	"github.com/Neumenon/raz/stream"
)

// retryable reports whether err came from a malformed value rather than
// from the streams themselves.
func retryable(err error) bool {
	return errors.Is(err, raz.ErrSyntax) || errors.Is(err, raz.ErrRange)
}

// inputNumber prompts until the user enters a value that decodes as T.
func inputNumber[T stream.Number](env *Env, prompt, hint string) (T, error) {
	for {
		v, err := stream.InputAs[T](env.Console, prompt)
		if err == nil {
			return v, nil
		}
		if !retryable(err) {
			return v, err
		}
		env.Logger.Debug("rejected input", "prompt", prompt, "error", err)
		if err := env.Console.Println(hint); err != nil {
			return v, err
		}
	}
}

func inputFloat(env *Env, prompt string) (float64, error) {
	return inputNumber[float64](env, prompt, "Please enter a number.")
}
