/*
	The REST layer has a small set of central types that are useful to understand
	when adding new resources or increasing their functionality.

	Model

	Models are structs that represent an object exchanged with the Smartsheet
	API. A model keeps its fields private and describes them with a field table
	(Fields), which is the only thing the binding package needs to read or write
	it. Models live in the rest/model package.

	Field

	A Field pairs a wire name with a kind and a validating setter. Setters accept
	raw decoded JSON and either store a conforming value or leave the field
	untouched. Enum fields are the only ones that fail loudly, with an
	InvalidValueError.

	TypedList

	TypedList backs every list-valued field. It is built with the set of element
	types it accepts and silently drops anything that does not conform, building
	nested models from JSON objects where a model element type is permitted.

	Deserialize and Serialize

	Deserialize walks a decoded JSON object and assigns each recognized key
	through the model's field table. Serialize walks the field table and produces
	a JSON-compatible map containing only the fields that are set. The reserved
	name "id" is stored under the attribute "id_" and renamed in both
	directions.
*/
package rest
