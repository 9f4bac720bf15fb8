package main

import (
	"fmt"
	"os"

	"github.com/go-errors/errors"

	bag "github.com/STBoyden/go-bag"
)

func fill(fruits *bag.Bag[string], items ...string) error {
	for _, item := range items {
		if err := fruits.Add(item); err != nil {
			return err
		}
	}

	return nil
}

func report(fruits *bag.Bag[string]) {
	fmt.Printf("%v size=%d capacity=%d\n", fruits, fruits.Size(), fruits.Capacity())
}

func main() {
	fruits, err := bag.NewWithCapacity[string](4)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.(*errors.Error).ErrorStack())
		os.Exit(1)
	}

	if err := fill(fruits, "apple", "banana", "cherry", "apple"); err != nil {
		fmt.Fprintln(os.Stderr, err.(*errors.Error).ErrorStack())
		os.Exit(1)
	}
	report(fruits)

	fmt.Println("remove banana:", fruits.Remove("banana"))
	fmt.Println("remove apple:", fruits.Remove("apple"))
	fmt.Println("contains apple:", fruits.Contains("apple"))
	report(fruits)

	for fruit := range fruits.All() {
		fmt.Println("-", fruit)
	}

	other := bag.New[string]()
	_ = fill(other, "apple", "cherry")
	fmt.Println("equals:", fruits.Equals(other), "same elements:", fruits.SameElements(other))

	if _, err := bag.NewWithCapacity[string](-1); err != nil {
		fmt.Println("rejected:", err)
	}
}
