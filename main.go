package main

import "splot/windows"

func main() {
	windows.CreateMainWindow()
}
