package rig

import "fmt"

// Variant identifies which avatar representation was selected at load
// time. The set is closed: a rigged model when its asset is available,
// otherwise the procedural stand-in built from primitives.
type Variant string

const (
	// VariantRigged binds joints to a skinned model's armature.
	VariantRigged Variant = "rigged"
	// VariantProcedural binds joints to the bone-less stand-in.
	VariantProcedural Variant = "procedural"
)

// Binding is the explicit joint-to-bone lookup table produced by Bind.
// It is built once per loaded avatar and passed to consumers; nothing
// holds bone lookups in ambient state.
type Binding struct {
	Variant Variant
	bones   map[string]string
}

// Bind resolves every engine joint name against the avatar's bone
// names. Joint names with no matching bone are an error: a partially
// bound rig silently drops rotations, which is much harder to notice
// than a failed load.
func Bind(variant Variant, boneNames map[string]string) (*Binding, error) {
	bones := make(map[string]string, len(boneNames))
	for _, joint := range JointNames() {
		bone, ok := boneNames[joint]
		if !ok {
			return nil, fmt.Errorf("bind rig: no bone for joint %q", joint)
		}
		bones[joint] = bone
	}
	return &Binding{Variant: variant, bones: bones}, nil
}

// BindIdentity binds every joint name to itself, the mapping the
// procedural stand-in uses.
func BindIdentity() *Binding {
	bones := make(map[string]string)
	for _, joint := range JointNames() {
		bones[joint] = joint
	}
	return &Binding{Variant: VariantProcedural, bones: bones}
}

// Bone returns the bone name bound to a joint.
func (b *Binding) Bone(joint string) (string, bool) {
	bone, ok := b.bones[joint]
	return bone, ok
}
