package razer

// Product ids of devices verified against this command set.
var knownDevices = map[uint16]string{
	0x010D: "Razer BlackWidow Ultimate 2012",
	0x011A: "Razer BlackWidow Ultimate 2013",
	0x0203: "Razer BlackWidow Chroma",
	0x0209: "Razer BlackWidow Tournament Edition Chroma",
	0x0214: "Razer BlackWidow Ultimate 2016",
	0x0045: "Razer Mamba",
	0x0046: "Razer Mamba Tournament Edition",
	0x0053: "Razer Naga Chroma",
	0x0067: "Razer Naga Trinity",
	0x0C00: "Razer Firefly",
	0x0241: "Razer BlackWidow Lite",
}

// DeviceName resolves a product id to a marketing name, falling back to a
// generic label for unlisted hardware.
func DeviceName(pid uint16) string {
	if name, ok := knownDevices[pid]; ok {
		return name
	}
	return "Razer device"
}
