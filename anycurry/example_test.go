package anycurry_test

import (
	"fmt"

	"github.com/currygo/fn/anycurry"
)

func ExampleFunc() {
	join, err := anycurry.Func(func(greeting, name string) string {
		return greeting + ", " + name + "!"
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	hello := join("Hello").(anycurry.Stage)
	fmt.Println(hello("Alice"))
	fmt.Println(hello("Bob"))
	// Output:
	// Hello, Alice!
	// Hello, Bob!
}

func ExampleMustFunc() {
	record := anycurry.MustFunc(func(id int, name, email string) map[string]any {
		return map[string]any{"id": id, "name": name, "email": email}
	})
	user := record(1, "Alice").(anycurry.Stage)("alice@example.com")
	fmt.Println(user.(map[string]any)["email"])
	// Output:
	// alice@example.com
}
