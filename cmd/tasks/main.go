// To-do list manager: add, view (filtered by category, sorted by deadline),
// complete, edit and delete tasks.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PapaEvang01/uni-projects-go/tasks"
)

func main() {
	list := tasks.NewList()
	in := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println("\n============ To-Do List ============")
		fmt.Println("1. Add Task")
		fmt.Println("2. View Tasks")
		fmt.Println("3. Complete Task")
		fmt.Println("4. Edit Task")
		fmt.Println("5. Delete Task")
		fmt.Println("6. Exit")

		switch prompt(in, "Enter your choice: ") {
		case "1":
			addTask(in, list)
		case "2":
			viewTasks(in, list)
		case "3":
			withTaskNumber(in, list, "complete", list.Complete)
		case "4":
			editTask(in, list)
		case "5":
			withTaskNumber(in, list, "delete", list.Delete)
		case "6":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid choice. Try again.")
		}
	}
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func readTaskInput(in *bufio.Scanner) (description, deadline string, p tasks.Priority, c tasks.Category) {
	description = prompt(in, "Enter task description: ")
	deadline = prompt(in, "Enter deadline (e.g., 2025-06-30): ")
	n, _ := strconv.Atoi(prompt(in, "Enter priority (1 = High, 2 = Medium, 3 = Low): "))
	p = tasks.Priority(n)
	c = tasks.Category(prompt(in, "Enter category [Study, Work, Personal, Other]: "))
	return description, deadline, p, c
}

func addTask(in *bufio.Scanner, list *tasks.List) {
	if err := list.Add(readTaskInput(in)); err != nil {
		fmt.Println("Cannot add task:", err)
		return
	}
	fmt.Println("Task added.")
}

func viewTasks(in *bufio.Scanner, list *tasks.List) {
	if list.Len() == 0 {
		fmt.Println("No tasks yet.")
		return
	}

	fmt.Println("\nFilter by category:")
	fmt.Println("1. All  2. Study  3. Work  4. Personal  5. Other")
	filter := tasks.CategoryAll
	switch prompt(in, "Enter choice: ") {
	case "2":
		filter = tasks.CategoryStudy
	case "3":
		filter = tasks.CategoryWork
	case "4":
		filter = tasks.CategoryPersonal
	case "5":
		filter = tasks.CategoryOther
	}

	list.SortByDeadline()
	now := time.Now()

	fmt.Printf("\n%-4s %-30s %-12s %-8s %-10s %-10s %s\n",
		"No", "Description", "Deadline", "Priority", "Status", "Category", "Due")
	for i, t := range list.Filter(filter) {
		status := "Pending"
		if t.Done {
			status = "Done"
		}
		due := fmt.Sprintf("in %d days", t.DueIn(now))
		if t.Overdue(now) {
			due = "Overdue"
		}
		fmt.Printf("%-4d %-30s %-12s %-8s %-10s %-10s %s\n",
			i+1, t.Description, t.Deadline.Format(tasks.DeadlineLayout),
			t.Priority, status, t.Category, due)
	}
}

func withTaskNumber(in *bufio.Scanner, list *tasks.List, verb string, op func(int) error) {
	n, err := strconv.Atoi(prompt(in, "Enter task number to "+verb+": "))
	if err != nil {
		fmt.Println("Not a number.")
		return
	}
	if err := op(n); err != nil {
		fmt.Printf("Cannot %s task: %v\n", verb, err)
		return
	}
	fmt.Println("Task " + verb + "d.")
}

func editTask(in *bufio.Scanner, list *tasks.List) {
	n, err := strconv.Atoi(prompt(in, "Enter task number to edit: "))
	if err != nil {
		fmt.Println("Not a number.")
		return
	}
	description, deadline, p, c := readTaskInput(in)
	if err := list.Edit(n, description, deadline, p, c); err != nil {
		fmt.Println("Cannot edit task:", err)
		return
	}
	fmt.Println("Task updated.")
}
