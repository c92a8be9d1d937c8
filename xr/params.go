package xr

import "log/slog"

// QRCodeScanner stores device parameters that were scanned from
// the QR code printed on a viewer.
type QRCodeScanner interface {
	// SavedDeviceParams returns the encoded device parameters, or nil
	// if none were saved yet.
	SavedDeviceParams() []byte

	// ScanCount is incremented on every successful scan.
	ScanCount() int

	// StartScan launches the scanning activity. It returns immediately,
	// the scan completes in the background.
	StartScan()
}

// DeviceParams tracks scans of device parameters. All methods are no-ops
// while the loader is not initialized.
type DeviceParams struct {
	loader  *Loader
	scanner QRCodeScanner

	// scan count when params were last seen, -1 if never
	count int
}

func NewDeviceParams(loader *Loader, scanner QRCodeScanner) *DeviceParams {
	return &DeviceParams{loader: loader, scanner: scanner, count: -1}
}

// HasDeviceParams reports if device parameters are saved.
func (p *DeviceParams) HasDeviceParams() bool {
	if !p.loader.IsInitialized() {
		return false
	}

	if len(p.scanner.SavedDeviceParams()) == 0 {
		p.loader.logger.Debug("No device params found")
		return false
	}

	p.loader.logger.Debug("Device params found")
	p.count = p.scanner.ScanCount()

	return true
}

// Scan launches the QR code scanning activity.
func (p *DeviceParams) Scan() {
	if !p.loader.IsInitialized() {
		return
	}

	p.count = p.scanner.ScanCount()

	p.loader.logger.Info("QR code scanning launched", slog.Int("scanCount", p.count))
	p.scanner.StartScan()
}

// HasNew reports if device parameters were scanned since they were
// last seen or reloaded.
func (p *DeviceParams) HasNew() bool {
	if !p.loader.IsInitialized() || p.count == -1 {
		return false
	}

	return p.count != p.scanner.ScanCount()
}

// Reload tells the display to pick up new device parameters.
func (p *DeviceParams) Reload() {
	if !p.loader.IsInitialized() {
		return
	}

	p.count = p.scanner.ScanCount()

	p.loader.logger.Info("Reloading device params", slog.Int("scanCount", p.count))

	if p.loader.opts.Display != nil {
		p.loader.opts.Display.DeviceParamsChanged()
	}
}
