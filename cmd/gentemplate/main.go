// gentemplate writes blank datasheet templates for both layouts and the
// docx export template into a directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"motor-datasheet/internal/datasheet"
	"motor-datasheet/internal/exporter/word"
)

func main() {
	dir := flag.String("dir", ".", "Directory to write the templates to")
	docx := flag.Bool("docx", false, "Also write the docx export template")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0755); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	layouts := map[datasheet.Layout]string{
		datasheet.LayoutMotor:     "Datenblattvorlage_Motor.xlsx",
		datasheet.LayoutGearmotor: "Datenblattvorlage_Getriebemotor.xlsx",
	}
	for l, name := range layouts {
		f, err := datasheet.NewTemplateLayout(l)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", l, err)
			os.Exit(1)
		}
		path := filepath.Join(*dir, name)
		err = f.SaveAs(path)
		f.Close()
		if err != nil {
			fmt.Printf("❌ %s: %v\n", l, err)
			os.Exit(1)
		}
		fmt.Printf("✓ %s template: %s\n", l, path)
	}

	if *docx {
		data, err := word.Template()
		if err != nil {
			fmt.Printf("❌ docx: %v\n", err)
			os.Exit(1)
		}
		path := filepath.Join(*dir, "template.docx")
		if err := os.WriteFile(path, data, 0644); err != nil {
			fmt.Printf("❌ docx: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ docx template: %s\n", path)
	}
}
