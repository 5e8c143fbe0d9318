package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: larkreport <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  export     Export report sections to PDF")
	fmt.Fprintln(w, "  preview    Render a report section as HTML")
	fmt.Fprintln(w, "  serve      Run the executive suite web server")
	fmt.Fprintln(w, "  inventory  Manage the inventory spreadsheet")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'larkreport help <command>' for details on a specific command.")
}

func printReportFlags(w io.Writer) {
	fmt.Fprintln(w, "Report:")
	fmt.Fprintln(w, "      --title <s>           Header bar text")
	fmt.Fprintln(w, "      --date <s>            Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long, report")
	fmt.Fprintln(w, "  -e, --engine <s>          PDF engine: native (default), chrome")
	fmt.Fprintln(w, "  -t, --timeout <d>         Chrome export timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --fixtures <dir>      Fixture directory (default: built-in demo data)")
	fmt.Fprintln(w)
}

func printOutputControl(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: larkreport export [section...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export report sections to single-page PDF files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  section  profit_summary (default), waste_report, category_performance")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (.pdf) or directory")
	fmt.Fprintln(w, "  -a, --all                 Export every section")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel exports (0 = auto)")
	fmt.Fprintln(w)
	printReportFlags(w)
	printOutputControl(w)
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: larkreport preview [section] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a report section as a standalone HTML page.")
	fmt.Fprintln(w, "Writes to stdout unless --output is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -o, --output <path>       Output HTML file")
	fmt.Fprintln(w)
	printReportFlags(w)
	printOutputControl(w)
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: larkreport serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run the executive suite web server behind the staff PIN.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --addr <host:port>    Listen address (default localhost:8501)")
	fmt.Fprintln(w)
	printReportFlags(w)
	printOutputControl(w)
}

// printInventoryUsage prints usage for the inventory command.
func printInventoryUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: larkreport inventory add --name <s> [flags]")
	fmt.Fprintln(w, "       larkreport inventory list [--sheet <path>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "add replaces the row with the same product name, or appends one.")
	fmt.Fprintln(w, "list prints every product in the spreadsheet.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Product:")
	fmt.Fprintln(w, "  -n, --name <s>            Product name (required)")
	fmt.Fprintln(w, "      --category <s>        Category (default Other)")
	fmt.Fprintln(w, "      --stock <n>           Stock quantity")
	fmt.Fprintln(w, "      --min <n>             Minimum stock")
	fmt.Fprintln(w, "      --cost <f>            Unit cost (AED)")
	fmt.Fprintln(w, "      --supplier <s>        Supplier name")
	fmt.Fprintln(w, "      --image <s>           Image file name")
	fmt.Fprintln(w, "      --sheet <path>        Workbook path (default data/inventory.xlsx)")
	fmt.Fprintln(w)
	printOutputControl(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "export":
		printExportUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "inventory":
		printInventoryUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: larkreport version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: larkreport help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
