package glyphatlas

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/atlas_draw.wgsl
var atlasDrawShaderSource string

// AtlasShaderWGSL returns the WGSL source of the reference atlas draw
// shader. It binds the slot descriptor buffer at group 0 binding 0 and
// reconstructs atlas UVs from each vertex's slot index, matching the
// 16-byte descriptor layout uploaded by Finalize.
func AtlasShaderWGSL() string {
	return atlasDrawShaderSource
}

// CompileAtlasShaderSPIRV compiles the atlas draw shader to SPIR-V words,
// for backends that consume SPIR-V instead of WGSL.
func CompileAtlasShaderSPIRV() ([]uint32, error) {
	return compileWGSL(atlasDrawShaderSource)
}

// compileWGSL compiles WGSL source to SPIR-V uint32 words via naga.
func compileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("glyphatlas: shader compilation failed: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// CreateAtlasShaderModule compiles the atlas draw shader and creates a HAL
// shader module from it.
func CreateAtlasShaderModule(device hal.Device, label string) (hal.ShaderModule, error) {
	words, err := CompileAtlasShaderSPIRV()
	if err != nil {
		return nil, err
	}
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: words,
		},
	})
}
