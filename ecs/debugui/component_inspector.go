package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/platformer/ecs"
)

// ComponentInspector shows and edits the components of one entity. Edits
// write straight into the pool's columns.
type ComponentInspector struct {
	cache *ReflectionCache
}

func NewComponentInspector() *ComponentInspector {
	return &ComponentInspector{cache: fieldCache}
}

func (ci *ComponentInspector) Render(p *ecs.Pool, e ecs.Entity, selected bool) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	if !selected {
		imgui.Text("No entity selected")
		return
	}
	if !p.IsActive(e) {
		imgui.Text(fmt.Sprintf("Entity %d is no longer active", e.Index()))
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %d (generation %d)", e.Index(), e.Generation()))
	imgui.Text(fmt.Sprintf("Tag: %s", p.Tag(e)))
	imgui.Separator()

	for _, k := range p.KindsOf(e) {
		component := p.ComponentOf(e, k)
		if component == nil {
			continue
		}
		if imgui.TreeNodeStr(k.String()) {
			ci.renderStruct(k.String(), reflect.ValueOf(component).Elem())
			imgui.TreePop()
		}
	}
}

func (ci *ComponentInspector) renderStruct(id string, val reflect.Value) {
	for _, f := range ci.cache.Fields(val.Type()) {
		ci.renderField(id+"."+f.Name, f.Name, val.Field(f.Index))
	}
}

// renderField draws an editor for val. Values reached through the pointer
// returned by ComponentOf are addressable, so setters write through.
func (ci *ComponentInspector) renderField(id, name string, val reflect.Value) {
	label := "##" + id

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		ci.fieldLabel(name, 150)
		if imgui.InputInt(label, &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		// Named integer types such as StateLabel and AnimationID read
		// better as their String form.
		if s, ok := val.Interface().(fmt.Stringer); ok {
			imgui.Text(fmt.Sprintf("%s: %s (%d)", name, s, val.Uint()))
			return
		}
		v := int32(val.Uint())
		ci.fieldLabel(name, 150)
		if imgui.InputInt(label, &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		ci.fieldLabel(name, 150)
		if imgui.InputFloat(label, &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name+label, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		ci.fieldLabel(name, 200)
		if imgui.InputTextWithHint(label, "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			ci.renderStruct(id, val)
			imgui.TreePop()
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val))
	}
}

func (ci *ComponentInspector) fieldLabel(name string, width float32) {
	imgui.Text(name + ":")
	imgui.SameLine()
	imgui.SetNextItemWidth(width)
}
