//go:build ignore

// verify_datasheet checks a filled datasheet: every labelled row must carry
// a value in the write column.
//
//	go run scripts/verify_datasheet.go output/Datenblatt_KSY_HD_246.40.xlsx
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"motor-datasheet/internal/datasheet"
	"motor-datasheet/internal/sheet"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: verify_datasheet <file.xlsx>")
	}
	filename := os.Args[1]

	f, err := excelize.OpenFile(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	s, err := sheet.FirstSheet(f)
	if err != nil {
		log.Fatal(err)
	}

	title, _ := s.Cell(datasheet.TitleRow, datasheet.TitleColumn)
	fmt.Printf("=== DATASHEET CHECK: %s ===\n", filename)
	fmt.Printf("Sheet: %s\n", s.Name())
	fmt.Printf("Title: %s\n\n", sheet.Text(title))

	rows, err := f.GetRows(s.Name())
	if err != nil {
		log.Fatal(err)
	}

	emptyCount := 0
	checkedCount := 0
	for i := range rows {
		row := i + 1
		label, _ := s.Cell(row, 2)
		if sheet.IsEmpty(label) || row == datasheet.TitleRow || strings.TrimSpace(sheet.Text(label)) == "Datenblatt" {
			continue
		}
		checkedCount++

		value, _ := s.Cell(row, datasheet.WriteColumn)
		if sheet.IsEmpty(value) {
			fmt.Printf("❌ EMPTY VALUE at row %d: %s\n", row, sheet.Text(label))
			emptyCount++
		}
	}

	fmt.Printf("\nChecked %d labelled rows\n", checkedCount)
	if emptyCount > 0 {
		fmt.Printf("❌ FAILED: %d rows without value\n", emptyCount)
		os.Exit(1)
	}
	fmt.Println("✅ PASSED: every labelled row has a value")
}
