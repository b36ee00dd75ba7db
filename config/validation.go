/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"reflect"
	"strings"
)

// ValidateEmbedded uses reflection to find embedded structs and validate them
func ValidateEmbedded(cfg Validator) error {
	r := reflect.ValueOf(cfg).Elem()
	for i := 0; i < r.NumField(); i++ {
		f := r.Field(i)
		if f.Kind() == reflect.Struct {
			validator, ok := f.Addr().Interface().(Validator)
			if !ok {
				continue
			}
			err := validator.Validate()
			field := r.Type().Field(i)

			err = wrapFieldValidationError(field, err)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func wrapFieldValidationError(field reflect.StructField, err error) error {
	var mapStructure *string
	if tag, hasTag := field.Tag.Lookup("mapstructure"); hasTag {
		if processed := processMapStructureString(tag); processed != "" {
			mapStructure = &processed
		}
	}
	err = WrapFieldValidationError(field.Name, mapStructure, nil, err)
	return err
}

// processMapStructureString extracts the field name from a mapstructure tag, discarding
// any flags such as `omitempty` or `squash` the tag may carry.
func processMapStructureString(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	name = strings.TrimSpace(name)
	if name == "-" {
		return ""
	}
	return name
}
