package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/shooter/ecs"
)

// Inspector edits the exported fields of the record behind the selected
// entity. Record must be a pointer into live storage for edits to stick.
type Inspector struct{}

func NewInspector() *Inspector {
	return &Inspector{}
}

func (ci *Inspector) Render(id ecs.EntityId, record any) {
	if !imgui.BeginV("Entity Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	val, ok := recordValue(record)
	if id == 0 || !ok {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %d:%d", id.Kind(), id.Index()))
	imgui.Text(fmt.Sprintf("Type: %s", val.Type()))
	imgui.Separator()

	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		ci.renderField(field.Name, fieldValue(val, field))
	}

	imgui.End()
}

// recordValue dereferences a record pointer to a settable struct value.
func recordValue(record any) (reflect.Value, bool) {
	val := reflect.ValueOf(record)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return reflect.Value{}, false
	}
	val = val.Elem()
	return val, val.Kind() == reflect.Struct
}

func fieldValue(parent reflect.Value, field FieldInfo) reflect.Value {
	v := parent.Field(field.Index)
	if field.IsPointer {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func (ci *Inspector) renderField(name string, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: nil", name))
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) {
			setNumber(val, float64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 {
			setNumber(val, float64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) {
			setNumber(val, float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.Array:
		if imgui.TreeNodeStr(fmt.Sprintf("%s [%d]", name, val.Len())) {
			for i := range val.Len() {
				ci.renderField(fmt.Sprintf("%s[%d]", name, i), val.Index(i))
			}
			imgui.TreePop()
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			for _, nf := range globalReflectionCache.GetFields(val.Type()) {
				ci.renderField(name+"."+nf.Name, fieldValue(val, nf))
			}
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}

// setNumber stores v into a numeric field, converting to the field's kind.
// Values that do not fit an integer field are ignored.
func setNumber(field reflect.Value, v float64) bool {
	if !field.CanSet() {
		return false
	}

	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.OverflowInt(int64(v)) {
			return false
		}
		field.SetInt(int64(v))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v < 0 || field.OverflowUint(uint64(v)) {
			return false
		}
		field.SetUint(uint64(v))
	case reflect.Float32, reflect.Float64:
		field.SetFloat(v)
	default:
		return false
	}
	return true
}
