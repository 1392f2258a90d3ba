package hid

// MockDevice is an in-memory Device for protocol tests. Writes are recorded;
// reads are served from a queue of prepared responses.
type MockDevice struct {
	Writes     [][]byte // every buffer passed to ControlWrite, copied
	Responses  [][]byte // popped front-first by ControlRead
	WriteErr   error    // returned by ControlWrite when set
	ReadErr    error    // returned by ControlRead when set
	ShortWrite int      // when > 0, ControlWrite reports this byte count
}

func NewMockDevice() *MockDevice {
	return &MockDevice{}
}

func (m *MockDevice) ControlWrite(_, _ uint16, data []byte) (int, error) {
	buf := make([]byte, len(data))
	copy(buf, data)
	m.Writes = append(m.Writes, buf)
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}
	if m.ShortWrite > 0 {
		return m.ShortWrite, nil
	}
	return len(data), nil
}

func (m *MockDevice) ControlRead(_, _ uint16, data []byte) (int, error) {
	if m.ReadErr != nil {
		return 0, m.ReadErr
	}
	if len(m.Responses) == 0 {
		return 0, nil
	}
	next := m.Responses[0]
	m.Responses = m.Responses[1:]
	return copy(data, next), nil
}

func (m *MockDevice) Close() error { return nil }

// MockManager is an in-memory Manager serving a single prepared device.
type MockManager struct {
	Device  *MockDevice
	Infos   []Info
	OpenErr error
}

func (m *MockManager) List() ([]Info, error) {
	return m.Infos, nil
}

func (m *MockManager) Open(_ Info) (Device, error) {
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	return m.Device, nil
}

func (m *MockManager) OpenVIDPID(_, _ uint16) (Device, error) {
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	return m.Device, nil
}
