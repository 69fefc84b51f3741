package schemafile

// metaSchema describes the accepted document shape. Validation runs before
// typed decoding so authors get located messages instead of decode errors.
const metaSchema = `{
  "type": "object",
  "required": ["fields"],
  "additionalProperties": false,
  "properties": {
    "title": {"type": "string"},
    "description": {"type": "string"},
    "strictNames": {"type": "boolean"},
    "fields": {
      "type": "array",
      "items": {"$ref": "#/$defs/field"}
    }
  },
  "$defs": {
    "path": {
      "oneOf": [
        {"type": "string", "minLength": 1},
        {"type": "array", "items": {"type": "string"}, "minItems": 1}
      ]
    },
    "choice": {
      "type": "object",
      "required": ["value", "label"],
      "additionalProperties": false,
      "properties": {
        "key": {"type": "string"},
        "label": {"type": "string"},
        "value": {}
      }
    },
    "field": {
      "type": "object",
      "required": ["key", "label"],
      "additionalProperties": false,
      "properties": {
        "key": {"type": "string", "minLength": 1},
        "name": {"type": "string"},
        "label": {"type": "string"},
        "kind": {"type": "string"},
        "value": {},
        "required": {"type": "boolean"},
        "rules": {
          "oneOf": [
            {"type": "array", "items": {"type": "string"}},
            {"type": "object"}
          ]
        },
        "errorPaths": {"type": "array", "items": {"$ref": "#/$defs/path"}},
        "transformer": {"type": "string"},
        "choices": {"type": "array", "items": {"$ref": "#/$defs/choice"}}
      }
    }
  }
}`
