//go:build ignore

// inspect_master lists the header keys of every sheet in a master file and
// reports duplicates, which would make key lookups ambiguous.
//
//	go run scripts/inspect_master.go SEW_Masterfile.xlsx
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"motor-datasheet/internal/sheet"
)

func main() {
	filename := "SEW_Masterfile.xlsx"
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	f, err := excelize.OpenFile(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	fmt.Printf("=== MASTER HEADER CHECK: %s ===\n", filename)

	duplicates := 0
	for _, name := range f.GetSheetList() {
		s, err := sheet.OpenSheet(f, name)
		if err != nil {
			log.Fatal(err)
		}
		header, err := s.Row(sheet.HeaderRow)
		if err != nil {
			log.Fatal(err)
		}

		seen := map[string]int{}
		keys := 0
		for i, v := range header {
			key := strings.TrimSpace(sheet.Text(v))
			if key == "" {
				continue
			}
			keys++
			col, _ := excelize.ColumnNumberToName(i + 1)
			if first, ok := seen[key]; ok {
				firstCol, _ := excelize.ColumnNumberToName(first)
				fmt.Printf("❌ %s: key %q in %s and %s\n", name, key, firstCol, col)
				duplicates++
				continue
			}
			seen[key] = i + 1
		}
		fmt.Printf("Sheet %-20s %d keys\n", name, keys)
	}

	if duplicates > 0 {
		fmt.Printf("\n❌ FAILED: %d duplicate keys\n", duplicates)
		os.Exit(1)
	}
	fmt.Println("\n✅ PASSED: header keys are unique")
}
