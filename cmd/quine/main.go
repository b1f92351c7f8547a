//go:build unix

// Quine writes its own source text to standard output. Every byte goes out
// through a raw write(2) call; the length of each write is found by scanning
// for a NUL terminator.
//
// The code table holds the lines up to and including its own declaration, and
// the rest table holds the lines after it. Do not edit the tables by hand:
// change the program, then run selfprint generate.
//
// gofmt would indent the table elements and break the fixed point, so this
// file is excluded from formatting; rewrite it only with selfprint generate.
package main

import (
	"os"

	"github.com/mouse-blink/selfprint/internal/rawio"
)

var code = []string{
"//go:build unix\n",
"\n",
"// Quine writes its own source text to standard output. Every byte goes out\n",
"// through a raw write(2) call; the length of each write is found by scanning\n",
"// for a NUL terminator.\n",
"//\n",
"// The code table holds the lines up to and including its own declaration, and\n",
"// the rest table holds the lines after it. Do not edit the tables by hand:\n",
"// change the program, then run selfprint generate.\n",
"//\n",
"// gofmt would indent the table elements and break the fixed point, so this\n",
"// file is excluded from formatting; rewrite it only with selfprint generate.\n",
"package main\n",
"\n",
"import (\n",
"\t\"os\"\n",
"\n",
"\t\"github.com/mouse-blink/selfprint/internal/rawio\"\n",
")\n",
"\n",
"var code = []string{\n",
"",
}

var rest = []string{
"\n",
"func main() {\n",
"\tout := rawio.NewWriter(rawio.Stdout)\n",
"\n",
"\tfor i := 0; code[i] != \"\"; i++ {\n",
"\t\tout.Print(code[i])\n",
"\t}\n",
"\n",
"\tfor i := 0; code[i] != \"\"; i++ {\n",
"\t\tout.PrintQuoted(code[i])\n",
"\t}\n",
"\n",
"\tout.Print(\"\\\"\\\",\\n}\\n\\nvar rest = []string{\\n\")\n",
"\n",
"\tfor i := 0; rest[i] != \"\"; i++ {\n",
"\t\tout.PrintQuoted(rest[i])\n",
"\t}\n",
"\n",
"\tout.Print(\"\\\"\\\",\\n}\\n\")\n",
"\n",
"\tfor i := 0; rest[i] != \"\"; i++ {\n",
"\t\tout.Print(rest[i])\n",
"\t}\n",
"\n",
"\tif err := out.Err(); err != nil {\n",
"\t\trawio.NewWriter(rawio.Stderr).Print(\"quine: \" + err.Error() + \"\\n\")\n",
"\t\tos.Exit(1)\n",
"\t}\n",
"}\n",
"",
}

func main() {
	out := rawio.NewWriter(rawio.Stdout)

	for i := 0; code[i] != ""; i++ {
		out.Print(code[i])
	}

	for i := 0; code[i] != ""; i++ {
		out.PrintQuoted(code[i])
	}

	out.Print("\"\",\n}\n\nvar rest = []string{\n")

	for i := 0; rest[i] != ""; i++ {
		out.PrintQuoted(rest[i])
	}

	out.Print("\"\",\n}\n")

	for i := 0; rest[i] != ""; i++ {
		out.Print(rest[i])
	}

	if err := out.Err(); err != nil {
		rawio.NewWriter(rawio.Stderr).Print("quine: " + err.Error() + "\n")
		os.Exit(1)
	}
}
