package apps

import "context"

// Greet asks a few questions and answers each one, exercising line input,
// typed input and string comparison.
func Greet(_ context.Context, env *Env) error {
	c := env.Console

	name, err := c.Input("What is your name? ")
	if err != nil {
		return err
	}
	if err := c.Println("Hi, ", name); err != nil {
		return err
	}

	age, err := inputNumber[int32](env, "How old are you? ", "Please enter your age in years.")
	if err != nil {
		return err
	}
	if err := c.Println("You are ", age, " years old"); err != nil {
		return err
	}

	height, err := inputFloat(env, "How tall are you? ")
	if err != nil {
		return err
	}
	if err := c.Println("You measure ", height, " meters"); err != nil {
		return err
	}

	answer, err := c.Input("Do you like Go? ")
	if err != nil {
		return err
	}
	if answer.CompareString("yes") == 0 || answer.CompareString("yea") == 0 {
		return c.Println("Good choice!")
	}
	return c.Println("Maybe next time.")
}
