package logging

const Threshold int32 = 1
