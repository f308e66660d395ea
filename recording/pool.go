package recording

import "github.com/gogpu/textlerp"

// ResourcePool stores the fonts referenced by recording commands.
// Fonts with the same key share one reference.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	fonts []textlerp.Font
	index map[textlerp.FontKey]FontRef
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		fonts: make([]textlerp.Font, 0, 4),
		index: make(map[textlerp.FontKey]FontRef),
	}
}

// AddFont adds a font to the pool and returns its reference.
// A nil font yields an invalid reference.
func (p *ResourcePool) AddFont(f textlerp.Font) FontRef {
	if f == nil {
		return FontRef(InvalidRef)
	}
	key := f.Key()
	if ref, ok := p.index[key]; ok {
		return ref
	}
	p.fonts = append(p.fonts, f)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := FontRef(uint32(len(p.fonts) - 1))
	p.index[key] = ref
	return ref
}

// GetFont returns the font for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetFont(ref FontRef) textlerp.Font {
	if int(ref) >= len(p.fonts) {
		return nil
	}
	return p.fonts[ref]
}

// FontCount returns the number of distinct fonts in the pool.
func (p *ResourcePool) FontCount() int {
	return len(p.fonts)
}

// Clear removes all fonts from the pool.
func (p *ResourcePool) Clear() {
	p.fonts = p.fonts[:0]
	clear(p.index)
}

// Clone creates a copy of the resource pool. Fonts are shared.
func (p *ResourcePool) Clone() *ResourcePool {
	clone := &ResourcePool{
		fonts: make([]textlerp.Font, len(p.fonts)),
		index: make(map[textlerp.FontKey]FontRef, len(p.index)),
	}
	copy(clone.fonts, p.fonts)
	for k, v := range p.index {
		clone.index[k] = v
	}
	return clone
}
