package vdf_test

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/vdfkit/pkg/kv"
	"github.com/joshuapare/vdfkit/pkg/vdf"
)

func ExampleLoadString() {
	root, err := vdf.LoadString(`"config" { "port" "27015" "name" "test server" }`)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(root.Get("port").AsInteger())
	fmt.Println(root.Get("NAME").AsString())
	fmt.Println(root.Get("missing").AsIntegerOr(-1))
	// Output:
	// 27015
	// test server
	// -1
}

func ExampleWriteText() {
	root := kv.New("root")
	_ = root.Set("greeting", kv.NewValue("", "line one\nline two"))

	var buf bytes.Buffer
	if err := vdf.WriteText(&buf, root); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(buf.String())
	// Output:
	// "root"
	// {
	// 	"greeting"		"line one\nline two"
	// }
}

func ExampleWriteBinary() {
	root := kv.New("r")
	_ = root.AppendChild(kv.NewValue("k", "v"))

	var buf bytes.Buffer
	if err := vdf.WriteBinary(&buf, root); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("% x\n", buf.Bytes())
	// Output:
	// 00 72 00 01 6b 00 76 00 08 08
}
