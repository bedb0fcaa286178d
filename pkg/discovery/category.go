package discovery

// AccessoryCategory is a HAP accessory category identifier.
type AccessoryCategory uint16

// Accessory categories.
const (
	CategoryOther              AccessoryCategory = 1
	CategoryBridge             AccessoryCategory = 2
	CategoryFan                AccessoryCategory = 3
	CategoryGarageDoorOpener   AccessoryCategory = 4
	CategoryLightbulb          AccessoryCategory = 5
	CategoryDoorLock           AccessoryCategory = 6
	CategoryOutlet             AccessoryCategory = 7
	CategorySwitch             AccessoryCategory = 8
	CategoryThermostat         AccessoryCategory = 9
	CategorySensor             AccessoryCategory = 10
	CategorySecuritySystem     AccessoryCategory = 11
	CategoryDoor               AccessoryCategory = 12
	CategoryWindow             AccessoryCategory = 13
	CategoryWindowCovering     AccessoryCategory = 14
	CategoryProgrammableSwitch AccessoryCategory = 15
	CategoryRangeExtender      AccessoryCategory = 16
	CategoryIPCamera           AccessoryCategory = 17
	CategoryVideoDoorbell      AccessoryCategory = 18
	CategoryAirPurifier        AccessoryCategory = 19
	CategoryHeater             AccessoryCategory = 20
	CategoryAirConditioner     AccessoryCategory = 21
	CategoryHumidifier         AccessoryCategory = 22
	CategoryDehumidifier       AccessoryCategory = 23
	CategorySpeaker            AccessoryCategory = 26
	CategorySprinkler          AccessoryCategory = 28
	CategoryFaucet             AccessoryCategory = 29
	CategoryShowerSystem       AccessoryCategory = 30
	CategoryTelevision         AccessoryCategory = 31
	CategoryRemoteControl      AccessoryCategory = 32
	CategoryRouter             AccessoryCategory = 33
)

var categoryNames = map[AccessoryCategory]string{
	CategoryOther:              "OTHER",
	CategoryBridge:             "BRIDGE",
	CategoryFan:                "FAN",
	CategoryGarageDoorOpener:   "GARAGE_DOOR_OPENER",
	CategoryLightbulb:          "LIGHTBULB",
	CategoryDoorLock:           "DOOR_LOCK",
	CategoryOutlet:             "OUTLET",
	CategorySwitch:             "SWITCH",
	CategoryThermostat:         "THERMOSTAT",
	CategorySensor:             "SENSOR",
	CategorySecuritySystem:     "SECURITY_SYSTEM",
	CategoryDoor:               "DOOR",
	CategoryWindow:             "WINDOW",
	CategoryWindowCovering:     "WINDOW_COVERING",
	CategoryProgrammableSwitch: "PROGRAMMABLE_SWITCH",
	CategoryRangeExtender:      "RANGE_EXTENDER",
	CategoryIPCamera:           "IP_CAMERA",
	CategoryVideoDoorbell:      "VIDEO_DOORBELL",
	CategoryAirPurifier:        "AIR_PURIFIER",
	CategoryHeater:             "HEATER",
	CategoryAirConditioner:     "AIR_CONDITIONER",
	CategoryHumidifier:         "HUMIDIFIER",
	CategoryDehumidifier:       "DEHUMIDIFIER",
	CategorySpeaker:            "SPEAKER",
	CategorySprinkler:          "SPRINKLER",
	CategoryFaucet:             "FAUCET",
	CategoryShowerSystem:       "SHOWER_SYSTEM",
	CategoryTelevision:         "TELEVISION",
	CategoryRemoteControl:      "REMOTE_CONTROL",
	CategoryRouter:             "ROUTER",
}

// String returns the category name.
func (c AccessoryCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
