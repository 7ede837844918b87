package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"
)

// Write writes a model to an STL file. Set ascii to true for the text
// format, false for the more compact binary format.
func Write(model *Model, filename string, ascii bool) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if ascii {
		err = writeASCII(writer, model)
	} else {
		err = writeBinary(writer, model)
	}
	if err != nil {
		return err
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// writeASCII writes a model in ASCII STL format
func writeASCII(w io.Writer, model *Model) error {
	name := model.Name
	if name == "" {
		name = "model"
	}

	if _, err := fmt.Fprintf(w, "solid %s\n", name); err != nil {
		return fmt.Errorf("failed to write solid header: %w", err)
	}

	for i, triangle := range model.Triangles {
		n := triangle.Normal
		_, err := fmt.Fprintf(w, "  facet normal %g %g %g\n", n.X, n.Y, n.Z)
		if err != nil {
			return fmt.Errorf("failed to write facet %d: %w", i, err)
		}

		fmt.Fprintln(w, "    outer loop")
		for _, v := range []struct{ X, Y, Z float64 }{
			{triangle.V1.X, triangle.V1.Y, triangle.V1.Z},
			{triangle.V2.X, triangle.V2.Y, triangle.V2.Z},
			{triangle.V3.X, triangle.V3.Y, triangle.V3.Z},
		} {
			if _, err := fmt.Fprintf(w, "      vertex %g %g %g\n", v.X, v.Y, v.Z); err != nil {
				return fmt.Errorf("failed to write vertex in facet %d: %w", i, err)
			}
		}
		fmt.Fprintln(w, "    endloop")
		fmt.Fprintln(w, "  endfacet")
	}

	if _, err := fmt.Fprintf(w, "endsolid %s\n", name); err != nil {
		return fmt.Errorf("failed to write solid footer: %w", err)
	}
	return nil
}

// writeBinary writes a model in binary STL format:
// an 80-byte header, a uint32 triangle count, then 50 bytes per triangle
// (normal, three vertices as float32 triples, attribute byte count).
func writeBinary(w io.Writer, model *Model) error {
	header := make([]byte, 80)
	// ASCII detection keys on a leading "solid", so guard the header
	name := strings.TrimPrefix(model.Name, "solid")
	copy(header, name)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	count := uint32(len(model.Triangles))
	if err := binary.Write(w, binary.LittleEndian, count); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, triangle := range model.Triangles {
		values := [12]float32{
			float32(triangle.Normal.X), float32(triangle.Normal.Y), float32(triangle.Normal.Z),
			float32(triangle.V1.X), float32(triangle.V1.Y), float32(triangle.V1.Z),
			float32(triangle.V2.X), float32(triangle.V2.Y), float32(triangle.V2.Z),
			float32(triangle.V3.X), float32(triangle.V3.Y), float32(triangle.V3.Z),
		}
		if err := binary.Write(w, binary.LittleEndian, values); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}

		var attributeByteCount uint16
		if err := binary.Write(w, binary.LittleEndian, attributeByteCount); err != nil {
			return fmt.Errorf("failed to write attribute for triangle %d: %w", i, err)
		}
	}

	return nil
}
