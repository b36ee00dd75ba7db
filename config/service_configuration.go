/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/identity-lifecycle/reflection"
)

const (
	EnvVarSeparator    = "_"
	DotEnvFile         = ".env"
	configKeySeparator = "."
	// bindingNamespace isolates the keys used for flag/environment binding from
	// real configuration keys. It must be lower case and collide with nothing.
	bindingNamespace = "reservedkeynamespaceforflagbinding0"
)

// Load populates configurationToSet from the environment: a .env file if present,
// then environment variables prefixed with envVarPrefix (e.g. a prefix "ilc" makes
// the loader look for variables starting with "ILC_"). Entries absent from the
// environment fall back to the values carried by defaultConfiguration. Tags on the
// fields of configurationToSet must only use `[_1-9a-zA-Z]` characters.
func Load(envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) error {
	return LoadFromViper(viper.New(), envVarPrefix, configurationToSet, defaultConfiguration)
}

// LoadFromViper behaves like Load but reuses the viper session provided instead of
// creating one. Viper's precedence order applies:
//  1. values set using explicit calls to `Set`
//  2. flags
//  3. environment (variables or `.env`)
//  4. configuration file
//  5. key/value store
//  6. default values
//
// with one difference regarding defaults: non-empty values from defaultConfiguration
// take precedence over defaults registered via `SetDefault` or flag definitions
// (emptiness as defined by `reflection.IsEmpty`).
func LoadFromViper(viperSession *viper.Viper, envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) (err error) {
	var defaults map[string]interface{}
	err = mapstructure.Decode(defaultConfiguration, &defaults)
	if err != nil {
		return
	}
	err = viperSession.MergeConfigMap(defaults)
	if err != nil {
		return
	}

	// A .env file, when present, is folded into the process environment.
	_ = godotenv.Load(DotEnvFile)

	configureEnvBinding(viperSession, envVarPrefix)
	applyFlagBindings(viperSession, envVarPrefix)

	err = viperSession.Unmarshal(configurationToSet)
	if err != nil {
		err = fmt.Errorf("unable to decode config into struct, %w", err)
		return
	}
	err = configurationToSet.Validate()
	return
}

// BindFlagToEnv ties a pflag to an environment variable. envVar may be given with
// or without the envVarPrefix.
func BindFlagToEnv(viperSession *viper.Viper, envVarPrefix string, envVar string, flag *pflag.Flag) (err error) {
	configureEnvBinding(viperSession, envVarPrefix)
	bindingKey, fullEnvVar := deriveBindingKeys(envVar, envVarPrefix)

	err = viperSession.BindPFlag(bindingKey, flag)
	if err != nil {
		return
	}
	err = viperSession.BindEnv(bindingKey, fullEnvVar)
	return
}

// deriveBindingKeys turns an environment variable name into the pair of keys used
// for binding: the namespaced viper key and the fully prefixed variable name.
func deriveBindingKeys(envVar, envVarPrefix string) (bindingKey string, fullEnvVar string) {
	short := strings.ToLower(envVar)
	prefix := strings.ToLower(envVarPrefix)
	if strings.HasPrefix(short, prefix) {
		short = strings.TrimPrefix(strings.TrimPrefix(short, prefix), EnvVarSeparator)
	}
	bindingKey = fmt.Sprintf("%v%v%v", bindingNamespace, configKeySeparator, strings.NewReplacer(EnvVarSeparator, configKeySeparator).Replace(short))
	fullEnvVar = strings.ToUpper(strings.NewReplacer(configKeySeparator, EnvVarSeparator).Replace(fmt.Sprintf("%v%v%v", envVarPrefix, EnvVarSeparator, short)))
	return
}

func isBindingKey(key string) bool {
	return strings.HasPrefix(key, bindingNamespace)
}

func configureEnvBinding(viperSession *viper.Viper, envVarPrefix string) {
	viperSession.SetEnvPrefix(envVarPrefix)
	viperSession.AllowEmptyEnv(false)
	viperSession.AutomaticEnv()
	viperSession.SetEnvKeyReplacer(strings.NewReplacer(configKeySeparator, EnvVarSeparator))
}

// applyFlagBindings propagates values bound under the binding namespace onto the
// real structure keys. Viper's own aliasing and BindEnv mishandle multi-level keys
// of nested configurations, hence this manual propagation.
func applyFlagBindings(viperSession *viper.Viper, envVarPrefix string) {
	keys := viperSession.AllKeys()
	for i := range keys {
		key := keys[i]
		if isBindingKey(key) {
			continue
		}
		bindingKey, _ := deriveBindingKeys(key, envVarPrefix)
		if viperSession.IsSet(bindingKey) {
			// A set flag takes precedence over the structured configuration value.
			viperSession.Set(key, viperSession.Get(bindingKey))
		} else {
			value := viperSession.Get(bindingKey)
			if !reflection.IsEmpty(value) {
				viperSession.SetDefault(key, value)
				// An empty structured value falls back to the flag default.
				if reflection.IsEmpty(viperSession.Get(key)) {
					viperSession.Set(key, value)
				}
			}
		}
		viperSession.RegisterAlias(bindingKey, key)
	}
}
