package apps

import (
	"context"
	"io"

	"github.com/Neumenon/raz/raz"
)

const todoMenu = "\n1. Add task\n2. View tasks\n3. Done with task\n4. Exit\nOption: "

// Todo keeps an in-memory task list driven by a numbered menu. End of input
// ends the session like the exit option does.
func Todo(ctx context.Context, env *Env) error {
	c := env.Console
	tasks := raz.NewVector[*raz.Str]()

	if err := c.Println("=== TODO LIST ==="); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		option, err := c.Input(todoMenu)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch {
		case option.EqualString("1"):
			task, err := c.Input("Task: ")
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			tasks.Push(task)
			err = c.Println("Task added!")
			if err != nil {
				return err
			}
		case option.EqualString("2"):
			if err := listTasks(env, tasks); err != nil {
				return err
			}
		case option.EqualString("3"):
			if err := finishTask(env, tasks); err != nil {
				return err
			}
		case option.EqualString("4"):
			env.Logger.Debug("todo session closed", "tasks", tasks.Len())
			return nil
		default:
			if err := c.Println("Unknown option: ", option); err != nil {
				return err
			}
		}
	}
}

func listTasks(env *Env, tasks *raz.Vector[*raz.Str]) error {
	out := env.Console.Out
	out.Println("\n--- Your tasks ---")
	if tasks.Empty() {
		out.Println("(none)")
	}
	for i, task := range tasks.All() {
		out.Println(i+1, ". ", task)
	}
	return out.Err()
}

// finishTask removes the task with the given 1-based number, keeping the
// order of the others.
func finishTask(env *Env, tasks *raz.Vector[*raz.Str]) error {
	c := env.Console
	n, err := inputNumber[int](env, "Task number: ", "Please enter a task number.")
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	if n < 1 || n > tasks.Len() {
		return c.Println("No task ", n)
	}

	rest := raz.NewVector[*raz.Str]()
	var done *raz.Str
	for i, task := range tasks.All() {
		if i == n-1 {
			done = task
			continue
		}
		rest.Push(task)
	}
	tasks.Assign(rest)
	return c.Println("Done: ", done)
}
