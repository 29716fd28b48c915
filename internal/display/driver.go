package display

import (
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/rileyhilliard/padd/internal/errors"
)

// Panel driver registry. Hardware drivers live out of tree and add
// themselves from an init function; the text driver is always present.
var (
	driversMu sync.Mutex
	drivers   = map[string]func() (Surface, error){
		"text": func() (Surface, error) { return NewTextSurface(os.Stdout), nil },
	}
)

// RegisterDriver makes a panel driver available to OpenDriver.
func RegisterDriver(name string, open func() (Surface, error)) {
	driversMu.Lock()
	defer driversMu.Unlock()
	drivers[name] = open
}

// OpenDriver opens the named panel driver.
func OpenDriver(name string) (Surface, error) {
	driversMu.Lock()
	open, ok := drivers[name]
	driversMu.Unlock()

	if !ok {
		return nil, errors.New(errors.ErrDisplay,
			"Unknown display driver: "+name,
			"Available drivers: "+strings.Join(DriverNames(), ", "))
	}
	return open()
}

// DriverNames lists the registered drivers, sorted.
func DriverNames() []string {
	driversMu.Lock()
	defer driversMu.Unlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
