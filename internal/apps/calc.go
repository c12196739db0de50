package apps

import "context"

// Calc reads two numbers and prints their sum, difference and product, and
// their quotient when the divisor is not zero.
func Calc(_ context.Context, env *Env) error {
	c := env.Console
	if err := c.Println("=== CALCULATOR ==="); err != nil {
		return err
	}

	a, err := inputFloat(env, "First number: ")
	if err != nil {
		return err
	}
	b, err := inputFloat(env, "Second number: ")
	if err != nil {
		return err
	}
	env.Logger.Debug("calc operands", "a", a, "b", b)

	c.Out.Println("Sum: ", a+b)
	c.Out.Println("Subtraction: ", a-b)
	c.Out.Println("Multiplication: ", a*b)
	if b != 0 {
		c.Out.Println("Division: ", a/b)
	}
	return c.Out.Err()
}
