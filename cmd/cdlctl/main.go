// Command cdlctl inspects and combines BizHawk compatible code/data log files.
package main

func main() {
	execute()
}
