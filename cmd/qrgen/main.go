// Command qrgen is a CLI front end for the qrforge QR Code encoder: it
// encodes text into a symbol and writes, prints, or opens a rendering of
// it.
package main

func main() {
	Execute()
}
