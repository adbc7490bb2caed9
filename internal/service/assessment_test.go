package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBMI(t *testing.T) {
	assert.Equal(t, 22.5, BMI(72.9, 180))
	assert.Equal(t, 0.0, BMI(0, 180))
	assert.Equal(t, 0.0, BMI(70, 0))
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{0, "Unknown"},
		{17.9, "Underweight"},
		{18.5, "Normal weight"},
		{24.9, "Normal weight"},
		{25, "Overweight"},
		{30, "Obese"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BMICategory(tt.bmi), "bmi %.1f", tt.bmi)
	}
}

func TestBloodPressureCategory(t *testing.T) {
	tests := []struct {
		sys, dia int
		want     string
	}{
		{0, 0, "Unknown"},
		{118, 76, "Normal"},
		{125, 78, "Elevated"},
		{125, 82, "High Blood Pressure Stage 1"},
		{135, 88, "High Blood Pressure Stage 1"},
		{150, 95, "High Blood Pressure Stage 2"},
		{185, 125, "Hypertensive Crisis"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BloodPressureCategory(tt.sys, tt.dia), "%d/%d", tt.sys, tt.dia)
	}
}

func TestHeartRateCategory(t *testing.T) {
	assert.Equal(t, "Unknown", HeartRateCategory(0))
	assert.Equal(t, "Below Normal (Bradycardia)", HeartRateCategory(55))
	assert.Equal(t, "Normal", HeartRateCategory(60))
	assert.Equal(t, "Normal", HeartRateCategory(100))
	assert.Equal(t, "Above Normal (Tachycardia)", HeartRateCategory(101))
}

func TestTip(t *testing.T) {
	assert.Contains(t, Tip("sleep"), "7-9 hours")
	assert.Equal(t, defaultTip, Tip("unknown-topic"))
}
