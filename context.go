package modalview

// Data is the bag of values handed to the templates. Views fill in the
// reserved modal keys last so app supplied extras can never mask them.
type Data map[string]interface{}

// NewData creates an empty data bag
func NewData() Data {
	return Data(make(map[string]interface{}))
}

// Set sets the key and value
func (d Data) Set(key string, val interface{}) {
	d[key] = val
}

// SetError sets any error that needs to be shown
func (d Data) SetError(err interface{}) {
	switch err.(type) {
	case string:
		d["Error"] = err.(string)
	case error:
		d["Error"] = err.(error).Error()
	default:
		d["Error"] = ""
	}
}

// merge copies the entries of src into d, overwriting existing keys.
func (d Data) merge(src Data) {
	for k, v := range src {
		d[k] = v
	}
}
