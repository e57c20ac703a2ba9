// pagedump prints the layout and contents of a page image: a raw
// PageSize byte file, as the buffer pool would hand to the page layer.
package main

import (
	"fmt"
	"os"

	"go-slotted-page/pkg/page"
	"go-slotted-page/util/logger"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <page-image>\n", os.Args[0])
		os.Exit(2)
	}

	buf, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.L.WithError(err).Fatal("failed to read page image")
	}

	p, err := page.Load(buf, nil)
	if err != nil {
		logger.L.WithError(err).Fatal("failed to load page")
	}

	logger.L.Infof("page loaded: %d slots, %d bytes free", p.SlotCount(), p.FreeSpace())

	for i := 0; i < p.SlotCount(); i++ {
		key, value, err := p.RowAt(i)
		if err != nil {
			logger.L.WithError(err).Fatal("failed to read row")
		}
		logger.L.Infof("slot %4d: key=%q value=%q", i, key, value)
	}
}
