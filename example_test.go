package larkreport_test

import (
	"bytes"
	"context"
	"fmt"

	larkreport "github.com/alnah/go-larkreport"
)

// Example exports a one-row report with the native engine.
func Example() {
	pdf := larkreport.Generate("profit_summary", []larkreport.Row{
		{{Label: "Revenue", Value: 3450.0}},
	})

	fmt.Println(bytes.HasPrefix(pdf, []byte("%PDF-1.4")))
	fmt.Println(bytes.Contains(pdf, []byte("(  Revenue: AED 3,450.00) Tj")))
	// Output:
	// true
	// true
}

// ExampleService_Preview renders the HTML page the chrome engine prints.
func ExampleService_Preview() {
	svc := larkreport.New()
	defer svc.Close()

	page, err := svc.Preview(context.Background(), larkreport.Input{
		Section: "waste_report",
		Rows:    []larkreport.Row{{{Label: "Item", Value: "Milk"}, {Label: "Value", Value: 240.0}}},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(bytes.Contains([]byte(page), []byte("<td>AED 240.00</td>")))
	// Output: true
}

func ExampleFormatAED() {
	fmt.Println(larkreport.FormatAED(3450, 0))
	// Output: AED 3,450
}

func ExampleEscapeText() {
	fmt.Println(larkreport.EscapeText("Item (Large)"))
	// Output: Item \(Large\)
}
