package apps

import "context"

// Guess picks a secret number in [1, GuessMax] and gives higher/lower hints
// until the user finds it.
func Guess(ctx context.Context, env *Env) error {
	c := env.Console
	upper := env.GuessMax
	if upper == 0 {
		upper = 100
	}
	secret := int64(env.Random.Range(1, upper))
	env.Logger.Debug("secret chosen", "seed", env.Random.Seed())

	c.Out.Println("=== GUESS THE NUMBER ===")
	c.Out.Println("I'm thinking of a number between 1 and ", upper)
	if err := c.Out.Err(); err != nil {
		return err
	}

	for attempts := 1; ; attempts++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		guess, err := inputNumber[int64](env, "Your guess: ", "Please enter a whole number.")
		if err != nil {
			return err
		}
		switch {
		case guess == secret:
			return c.Println("Correct! You guessed it in ", attempts, " attempts")
		case guess < secret:
			err = c.Println("Higher...")
		default:
			err = c.Println("Lower...")
		}
		if err != nil {
			return err
		}
	}
}
