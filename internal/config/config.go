package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Client      Client
	Resolver    Resolver
	Server      Server
	PubIP       PubIP
	Geolocation Geolocation
	Health      Health
	Metrics     Metrics
	Logger      Logger
}

func (c *Config) SetDefaults() {
	c.Client.setDefaults()
	c.Resolver.setDefaults()
	c.Server.setDefaults()
	c.PubIP.setDefaults()
	c.Geolocation.setDefaults()
	c.Health.SetDefaults()
	c.Metrics.setDefaults()
	c.Logger.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := []struct {
		name      string
		validator validator
	}{
		{name: "client", validator: &c.Client},
		{name: "resolver", validator: &c.Resolver},
		{name: "server", validator: &c.Server},
		{name: "public ip", validator: &c.PubIP},
		{name: "geolocation", validator: &c.Geolocation},
		{name: "health", validator: &c.Health},
		{name: "metrics", validator: &c.Metrics},
		{name: "logger", validator: &c.Logger},
	}

	for _, v := range toValidate {
		err = v.validator.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", v.name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.Resolver.toLinesNode())
	node.AppendNode(c.Server.toLinesNode())
	node.AppendNode(c.PubIP.toLinesNode())
	node.AppendNode(c.Geolocation.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	node.AppendNode(c.Metrics.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader, warner Warner) (err error) {
	err = c.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	err = c.Resolver.read(reader)
	if err != nil {
		return fmt.Errorf("reading resolver settings: %w", err)
	}

	err = c.Server.read(reader, warner)
	if err != nil {
		return fmt.Errorf("reading server settings: %w", err)
	}

	err = c.PubIP.read(reader)
	if err != nil {
		return fmt.Errorf("reading public IP settings: %w", err)
	}

	err = c.Geolocation.read(reader)
	if err != nil {
		return fmt.Errorf("reading geolocation settings: %w", err)
	}

	c.Health.Read(reader)

	err = c.Metrics.read(reader)
	if err != nil {
		return fmt.Errorf("reading metrics settings: %w", err)
	}

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	return nil
}
