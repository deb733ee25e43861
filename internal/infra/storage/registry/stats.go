package registry

import "time"

// SizeGauge принимает размеры коллекций реестра
type SizeGauge interface {
	SetRegistrySize(collection string, size int)
}

// ReportSize публикует текущие размеры коллекций
func (r *Registry) ReportSize(g SizeGauge) {
	c := r.Counts()
	g.SetRegistrySize("bookings", c.Bookings)
	g.SetRegistrySize("payments", c.Payments)
	g.SetRegistrySize("customers", c.Customers)
}

// StartSizeReporter периодически публикует размеры коллекций до закрытия stop
func (r *Registry) StartSizeReporter(g SizeGauge, interval time.Duration, stop <-chan struct{}) {
	r.ReportSize(g)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				r.ReportSize(g)
			case <-stop:
				return
			}
		}
	}()
}
