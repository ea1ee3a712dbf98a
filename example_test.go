package keeper_test

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/keeper"
	"github.com/aretw0/keeper/pkg/core"
)

func ExampleOpen() {
	dir, err := os.MkdirTemp("", "keeper-example-")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	assistant, err := keeper.Open(dir)
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	err = assistant.Contacts.Add(ctx, core.Contact{
		Name:     "Jane Doe",
		Address:  "12 Main St",
		Phone:    "+380 50 123 4567",
		Email:    "jane.doe@example.com",
		Birthday: "1990-01-15",
	})
	if err != nil {
		panic(err)
	}

	for _, c := range assistant.Contacts.Search("jane") {
		fmt.Println(c.Name, c.Email)
	}
	// Output: Jane Doe jane.doe@example.com
}
