package apps

import (
	"context"
	"errors"

	"github.com/Neumenon/raz/raz"
)

// Pswd generates a password of the requested length from env.Charset.
func Pswd(_ context.Context, env *Env) error {
	c := env.Console
	charset := raz.StrFrom(env.Charset)
	if charset.Empty() {
		return errors.New("empty charset")
	}
	if err := c.Println("=== PASSWORD GENERATOR ==="); err != nil {
		return err
	}

	length, err := inputNumber[uint32](env, "Password length: ", "Please enter a non-negative whole number.")
	if err != nil {
		return err
	}

	password := raz.NewStr()
	last := uint32(charset.Len() - 1)
	for range length {
		password.PushBack(charset.At(int(env.Random.Range(0, last))))
	}
	env.Logger.Debug("password generated", "length", length, "charset_size", charset.Len())

	return c.Println("Your password: ", password)
}
