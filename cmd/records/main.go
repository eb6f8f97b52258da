// Student record manager. Records live in memory by default; pass
// -db <connection string> to keep them in Postgres instead.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/PapaEvang01/uni-projects-go/records"
)

const exportFile = "students_export.csv"

func main() {
	os.Exit(run())
}

func run() int {
	dbConn := flag.String("db", "", "Postgres connection string (default: in-memory store)")
	flag.Parse()

	var store records.Store
	if *dbConn != "" {
		pg, err := records.OpenPGStore(*dbConn)
		if err != nil {
			fmt.Fprintln(os.Stderr, "cannot open database:", err)
			return 1
		}
		defer pg.Close()
		if err := pg.EnsureSchema(); err != nil {
			fmt.Fprintln(os.Stderr, "cannot create schema:", err)
			return 1
		}
		store = pg
	} else {
		store = records.NewMemStore()
	}

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println("\n========== Student Record Management ==========")
		fmt.Println("1. Add Student")
		fmt.Println("2. Display All Students")
		fmt.Println("3. Search Student")
		fmt.Println("4. Delete Student")
		fmt.Println("5. Export Students to CSV")
		fmt.Println("6. Exit")

		switch prompt(in, "Enter your choice: ") {
		case "1":
			addStudent(in, store)
		case "2":
			displayStudents(store)
		case "3":
			searchStudent(in, store)
		case "4":
			deleteStudent(in, store)
		case "5":
			exportCSV(store)
		case "6":
			fmt.Println("Exiting...")
			return 0
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

func addStudent(in *bufio.Scanner, store records.Store) {
	s := records.Student{
		FirstName: prompt(in, "Enter First Name: "),
		LastName:  prompt(in, "Enter Last Name: "),
		Roll:      prompt(in, "Enter Roll Number (e.g., AM12345): "),
	}
	if err := store.Add(s); err != nil {
		fmt.Println("Cannot add student:", err)
		return
	}
	fmt.Println("Student added successfully!")
}

func displayStudents(store records.Store) {
	students, err := store.List()
	if err != nil {
		fmt.Println("Cannot list students:", err)
		return
	}
	if len(students) == 0 {
		fmt.Println("No records found.")
		return
	}

	fmt.Printf("\n%-5s %-18s %-18s %-15s\n", "No", "First Name", "Last Name", "Roll")
	fmt.Println("---------------------------------------------------------------")
	for i, s := range students {
		fmt.Printf("%-5d %-18s %-18s %-15s\n", i+1, s.FirstName, s.LastName, s.Roll)
	}
}

func searchStudent(in *bufio.Scanner, store records.Store) {
	fmt.Println("\nSearch by:")
	fmt.Println("1. Roll Number")
	fmt.Println("2. Last Name")
	choice := prompt(in, "Enter choice (1 or 2): ")

	for attempt := 1; attempt <= 3; attempt++ {
		switch choice {
		case "1":
			roll := prompt(in, "Enter roll number: ")
			s, err := store.FindByRoll(roll)
			if err == nil {
				printStudent(s)
				return
			}
		case "2":
			name := prompt(in, "Enter last name: ")
			matches, err := store.SearchByLastName(name)
			if err == nil && len(matches) > 0 {
				for _, s := range matches {
					printStudent(s)
				}
				return
			}
		default:
			fmt.Println("Invalid choice.")
			return
		}
		if attempt < 3 {
			fmt.Printf("No match. Try again (%d/3 attempts).\n", attempt)
		}
	}
	fmt.Println("No student found after 3 attempts. Returning to main menu...")
}

func printStudent(s records.Student) {
	fmt.Println("--------------------------")
	fmt.Println("First Name:", s.FirstName)
	fmt.Println("Last Name:", s.LastName)
	fmt.Println("Roll Number:", s.Roll)
}

func deleteStudent(in *bufio.Scanner, store records.Store) {
	roll := prompt(in, "Enter roll number to delete: ")
	if err := store.Delete(roll); err != nil {
		fmt.Println("Cannot delete:", err)
		return
	}
	fmt.Println("Student record deleted successfully!")
}

func exportCSV(store records.Store) {
	students, err := store.List()
	if err != nil {
		fmt.Println("Cannot list students:", err)
		return
	}

	f, err := os.Create(exportFile)
	if err != nil {
		fmt.Println("Cannot create export file:", err)
		return
	}
	defer f.Close()

	if err := records.WriteCSV(f, students); err != nil {
		fmt.Println("Export failed:", err)
		return
	}
	fmt.Println("Exported successfully to", exportFile)
}
