package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/Miziak/openrazer/internal/config"
	"github.com/Miziak/openrazer/internal/translate"
)

// KeymapCmd works with the driver's button_translations attribute format:
// little-endian (from, to) u16 pairs, or a single byte to clear.
type KeymapCmd struct {
	Encode KeymapEncodeCmd `cmd:"" help:"Encode FROM:TO keycode pairs into the wire format."`
	Decode KeymapDecodeCmd `cmd:"" help:"Decode a wire-format table into readable pairs."`
	Clear  KeymapClearCmd  `cmd:"" help:"Write the single-byte clear marker."`
}

type KeymapEncodeCmd struct {
	Pairs  []string `arg:"" help:"Remappings as FROM:TO keycodes (decimal or 0x hex)."`
	Output string   `short:"o" help:"Attribute file to write; stdout when omitted." type:"path"`
}

func (c *KeymapEncodeCmd) Run(cfg config.Config) error {
	buf := make([]byte, 0, len(c.Pairs)*4)
	for _, p := range c.Pairs {
		from, to, err := parsePair(p)
		if err != nil {
			return err
		}
		buf = binary.LittleEndian.AppendUint16(buf, from)
		buf = binary.LittleEndian.AppendUint16(buf, to)
	}

	// Round-trip through a registry so razerctl rejects anything the driver
	// side would.
	reg := translate.NewRegistry()
	if res := reg.Apply(0, buf); res != translate.Applied {
		return fmt.Errorf("encoded table rejected with result %d", res)
	}
	return writeOut(c.Output, reg.Serialize(0))
}

type KeymapDecodeCmd struct {
	Path string `arg:"" help:"Wire-format table file (e.g. the button_translations attribute)." type:"path"`
}

func (c *KeymapDecodeCmd) Run(cfg config.Config) error {
	raw, err := os.ReadFile(c.Path)
	if err != nil {
		return err
	}
	if len(raw) == 1 {
		fmt.Println("(no translations)")
		return nil
	}

	reg := translate.NewRegistry()
	if res := reg.Apply(0, raw); res != translate.Applied {
		return fmt.Errorf("not a valid translation table (result %d)", res)
	}
	for i := 0; i < reg.Len(0); i++ {
		// Re-read the wire bytes rather than looking up by key: duplicate
		// From keys would otherwise collapse onto the first entry.
		from := binary.LittleEndian.Uint16(raw[i*4:])
		to := binary.LittleEndian.Uint16(raw[i*4+2:])
		fmt.Printf("0x%04x -> 0x%04x\n", from, to)
	}
	return nil
}

type KeymapClearCmd struct {
	Output string `short:"o" help:"Attribute file to write; stdout when omitted." type:"path"`
}

func (c *KeymapClearCmd) Run(cfg config.Config) error {
	return writeOut(c.Output, []byte{0x00})
}

func parsePair(s string) (uint16, uint16, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("remapping %q is not FROM:TO", s)
	}
	from, err := parseID(parts[0])
	if err != nil {
		return 0, 0, err
	}
	to, err := parseID(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

func writeOut(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o200)
}
